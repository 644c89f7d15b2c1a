package constants

// Database table names
const (
	TableUsers         = "users"
	TableOAuthAccounts = "oauth_accounts"
	TableChessBoards   = "chess_boards"
)

// Gin context keys set by the auth middleware
const (
	ContextKeyUserID = "user_id"
)

// Supported OAuth provider names
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)
