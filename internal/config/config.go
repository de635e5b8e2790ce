package config

const (
	ProviderDeepSeek    = "deepseek"
	ProviderGemini      = "gemini"
	ProviderGroq        = "groq"
	ProviderHuggingFace = "huggingface"
)

// ProviderOrder is the fixed priority in which remote providers are tried.
var ProviderOrder = []string{
	ProviderDeepSeek,
	ProviderGemini,
	ProviderGroq,
	ProviderHuggingFace,
}

// Config holds application configuration
type Config struct {
	DatasetPath  string // Path to the counsellor Q&A CSV
	ChatLogPath  string // Path to the sqlite exchange log
	KeysPath     string // Path to the optional keys.json credential file
	DatasetFirst bool   // Answer from the dataset before trying remote providers
	Debug        bool
	UserID       string // Default user id for the interactive session
}
