package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the server flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-port grpc health server port
//	-d database connection string
//	-env application environment (development|production)
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-expires-in token lifetime (e.g. "90d", "1h")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-public-url externally visible base URL
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var grpcPort int
	var databaseURI string
	var appEnv string
	var jsonConfigPath string
	var jwtSecret string
	var jwtExpiresIn string
	var requestTimeout time.Duration
	var publicURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&grpcPort, "grpc-port", 0, "gRPC health server port")
	fs.StringVar(&databaseURI, "d", "", "Database connection string")
	fs.StringVar(&appEnv, "env", "", "Application environment")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "Token signing key")
	fs.StringVar(&jwtExpiresIn, "jwt-expires-in", "", "Token lifetime (e.g., 90d, 1h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var expiresIn time.Duration
	if jwtExpiresIn != "" {
		d, err := ParseDuration(jwtExpiresIn)
		if err != nil {
			return nil, err
		}
		expiresIn = d
	}

	return &StructuredConfig{
		App: App{
			Env:       appEnv,
			PublicURL: publicURL,
		},
		Storage: Storage{
			DB: DB{URI: databaseURI},
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			GRPCPort:       grpcPort,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			JWTSecret:    jwtSecret,
			JWTExpiresIn: expiresIn,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
