package types

// Setting keys consumed and produced by Haven.
const (
	SettingCurrentUser           = "currentUser"
	SettingSeeded                = "seeded"
	SettingSeeding               = "seeding"
	SettingAccentColor           = "accentColor"
	SettingNotificationsLastSeen = "notificationsLastSeen"
	SettingProfileVisibility     = "profileVisibility"
)

// Setting is a process-wide configuration entry. Values are stored as JSON.
type Setting struct {
	Key   string
	Value any
}

// Draft is a keyed scratch buffer for an in-progress composition. It is
// overwritten on every edit and read once on load.
type Draft struct {
	Key       string // e.g. "composer".
	Text      string
	Kind      string // KindCircle or KindSignal.
	UpdatedAt int64  // Milliseconds since the Unix epoch.
}

// DraftComposer is the draft key used by the trace composer.
const DraftComposer = "composer"
