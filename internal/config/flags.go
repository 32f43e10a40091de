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
//	-a control server address in format [host]:[port]
//	-d local database DSN (sqlite path or postgres:// URL)
//	-plant plant API base URL
//	-realtime plant realtime websocket URL
//	-c/-config json file path with configs
//	-hash-key payload integrity HMAC key
//	-request-timeout plant API request timeout (e.g., "30s", "1m")
//	-sync-interval periodic sync interval (e.g., "30s")
//	-blob-backend photo storage backend (s3, http, dir)
//	-blob-dir drop directory for the dir backend
//	-quota-bytes on-device queue storage budget
//	-log-level zerolog level (debug, info, warn, ...)
//	-tui run the terminal dashboard
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var plantAddress string
	var realtimeAddress string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var blobBackend string
	var blobDir string
	var quotaBytes int64
	var logLevel string
	var tui bool

	flag.Var(&serverAddress, "a", "Control server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&plantAddress, "plant", "", "Plant API base URL")
	flag.StringVar(&realtimeAddress, "realtime", "", "Plant realtime websocket URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Payload integrity HMAC key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Plant request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 30s)")
	flag.StringVar(&blobBackend, "blob-backend", "", "Photo storage backend (s3, http, dir)")
	flag.StringVar(&blobDir, "blob-dir", "", "Drop directory for the dir backend")
	flag.Int64Var(&quotaBytes, "quota-bytes", 0, "Queue storage budget in bytes")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, ...)")
	flag.BoolVar(&tui, "tui", false, "Run the terminal dashboard")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey:  hashKey,
			LogLevel: logLevel,
			TUI:      tui,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Blobs: Blobs{
				Backend: blobBackend,
				Dir:     blobDir,
			},
			QuotaBytes: quotaBytes,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Plant: Plant{
			HTTPAddress:     plantAddress,
			RealtimeAddress: realtimeAddress,
			RequestTimeout:  requestTimeout,
		},
		Netmon: Netmon{},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// merge step can fall through to lower-priority sources.
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
