package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the loaded configuration to the fx graph.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	// Debug turns data-integrity warnings and commit failures into panics.
	// Production keeps running and only logs them.
	Debug bool

	DBPath string

	// OrganizationFeedURL points at the JSON list of clubs and museums.
	// Seeding cannot proceed without it, so a fetch failure is fatal.
	OrganizationFeedURL string

	// WaalreRosterURL is the semi-structured HTML member table that the
	// roster parser scrapes.
	WaalreRosterURL string
	RosterBaseURL   string

	// MemberlistsPath locates the memberlists.yml file with the auxiliary
	// current/prospective/coach name lists used while scraping.
	MemberlistsPath string

	VoteAPIBaseURL string
	VoteNamespace  string

	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")

	return Config{
		AppName:     getenv("APP_SERVICE", "photohub"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: environment,
		Debug:       getenvBool("PHOTOHUB_DEBUG", environment != "production"),

		DBPath: getenv("DATABASE_PATH", "photohub.db"),

		OrganizationFeedURL: getenv("ORGANIZATION_FEED_URL",
			"https://raw.githubusercontent.com/vdhamer/Photo-Club-Hub/main/Photo%20Club%20Hub/ViewModel/Lists/OrganizationList.json"),

		WaalreRosterURL: getenv("WAALRE_ROSTER_URL",
			"http://www.vdhamer.com/fgwaalre_level2/"),
		RosterBaseURL: getenv("ROSTER_BASE_URL", "http://www.vdHamer.com/fgWaalre"),

		MemberlistsPath: getenv("MEMBERLISTS_PATH", "."),

		VoteAPIBaseURL: getenv("VOTE_API_BASE_URL", "https://simplejsoncms.com/api"),
		VoteNamespace:  getenv("VOTE_NAMESPACE", "com.vdhamer.photo_clubs_vote_on_features"),

		HTTPTimeout: getenvDuration("HTTP_TIMEOUT", 30*time.Second),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
