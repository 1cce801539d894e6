package haven

// Version is the Haven release version.
const Version = "0.1.0"
