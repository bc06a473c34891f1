package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-q markdown questions directory
//	-categories category registry YAML file
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hash-key reset token hash key
//	-admin-email email that receives the admin role
//	-expose-reset-token return reset tokens in responses (development)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-ai-provider summarizer client: openai or http
//	-ai-api-key summarizer API key
//	-ai-base-url summarizer endpoint override
//	-ai-model summarizer model name
//	-ai-timeout summarizer request timeout
//	-reset-cleanup-interval how often expired reset tokens are cleared
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var questionsDir, categoriesFile string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var hashKey, adminEmail string
	var exposeResetToken bool
	var requestTimeout time.Duration
	var aiProvider, aiAPIKey, aiBaseURL, aiModel string
	var aiTimeout time.Duration
	var resetCleanupInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&questionsDir, "q", "", "Markdown questions directory")
	flag.StringVar(&categoriesFile, "categories", "", "Category registry YAML file")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&hashKey, "hash-key", "", "Reset token hash key")
	flag.StringVar(&adminEmail, "admin-email", "", "Admin account email")
	flag.BoolVar(&exposeResetToken, "expose-reset-token", false, "Return reset tokens in responses")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&aiProvider, "ai-provider", "", "Summarizer client: openai or http")
	flag.StringVar(&aiAPIKey, "ai-api-key", "", "Summarizer API key")
	flag.StringVar(&aiBaseURL, "ai-base-url", "", "Summarizer base URL")
	flag.StringVar(&aiModel, "ai-model", "", "Summarizer model")
	flag.DurationVar(&aiTimeout, "ai-timeout", 0, "Summarizer request timeout")
	flag.DurationVar(&resetCleanupInterval, "reset-cleanup-interval", 0, "Expired reset token cleanup interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			HashKey:          hashKey,
			AdminEmail:       adminEmail,
			ExposeResetToken: exposeResetToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				QuestionsDir:   questionsDir,
				CategoriesFile: categoriesFile,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			AI: AI{
				Provider:       aiProvider,
				APIKey:         aiAPIKey,
				BaseURL:        aiBaseURL,
				Model:          aiModel,
				RequestTimeout: aiTimeout,
			},
		},
		Workers: Workers{
			ResetTokenCleanupInterval: resetCleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
