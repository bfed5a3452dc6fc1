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
//	-c/-config json file path with configs
//	-api-address base address of the API (client binary)
//	-session-db path to the client session SQLite file
//	-session-ttl persisted session lifetime (e.g., "24h")
//	-session-sweep-interval expiry check interval (e.g., "1m")
//	-bcrypt-cost bcrypt cost for password hashing (0 = library default)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-global-errors log errors reaching the top-level handler
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var apiAddress string
	var sessionDBPath string
	var sessionTTL time.Duration
	var sessionSweepInterval time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var logGlobalErrors bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiAddress, "api-address", "", "Base address of the coursebook API")
	flag.StringVar(&sessionDBPath, "session-db", "", "Client session SQLite file path")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Persisted session lifetime (e.g., 24h)")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Session expiry check interval (e.g., 1m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost for password hashing (0 = default)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&logGlobalErrors, "log-global-errors", false, "Log errors reaching the top-level handler")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BcryptCost:               bcryptCost,
			EnableGlobalErrorLogging: logGlobalErrors,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			DBPath:        sessionDBPath,
			TTL:           sessionTTL,
			SweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
