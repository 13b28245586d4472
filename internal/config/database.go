package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultDatabasePort is used when DB_PORT is unset
	DefaultDatabasePort = 5432
	// DefaultSSLMode is used when DB_SSLMODE is unset
	DefaultSSLMode = "prefer"
	// DefaultConnectTimeout bounds how long a connection attempt may block
	DefaultConnectTimeout = 5 * time.Second
)

// DatabaseConfig holds the PostgreSQL connection settings
type DatabaseConfig struct {
	Host           string        `mapstructure:"host" validate:"required"`
	Name           string        `mapstructure:"name" validate:"required"`
	User           string        `mapstructure:"user" validate:"required"`
	Password       string        `mapstructure:"password"`
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	SSLMode        string        `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

var validate = validator.New()

// DefaultDatabaseConfig returns default database configuration
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:           "localhost",
		Port:           DefaultDatabasePort,
		SSLMode:        DefaultSSLMode,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

// Validate validates the database configuration
func (c *DatabaseConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	return nil
}

// ConnectionString builds a postgres URL with credentials escaped
func (c *DatabaseConfig) ConnectionString() string {
	port := c.Port
	if port == 0 {
		port = DefaultDatabasePort
	}

	u := &url.URL{
		Scheme: "postgres",
		Path:   "/" + c.Name,
	}

	query := url.Values{}
	// Socket directories and host lists do not fit the URL authority
	if strings.ContainsAny(c.Host, "/,") {
		query.Set("host", c.Host)
		query.Set("port", strconv.Itoa(port))
	} else {
		u.Host = net.JoinHostPort(c.Host, strconv.Itoa(port))
	}

	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}

	if c.SSLMode != "" {
		query.Set("sslmode", c.SSLMode)
	}
	if c.ConnectTimeout > 0 {
		seconds := int(c.ConnectTimeout / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		query.Set("connect_timeout", strconv.Itoa(seconds))
	}
	u.RawQuery = query.Encode()

	return u.String()
}
