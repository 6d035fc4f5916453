package store

// Well-known storage keys. The dapsiwow-* keys hold preference data, the
// dapsigames-* keys hold the mock account records. Readers must tolerate
// missing or malformed values under every one of these keys.
const (
	KeyFavorites   = "dapsiwow-favorites"
	KeyRecentTools = "dapsiwow-recent"
	KeyPreferences = "dapsiwow-preferences"

	KeySessionUser  = "dapsigames-user"
	KeySessionToken = "dapsigames-token"
	KeyUserTable    = "dapsigames-users"
)
