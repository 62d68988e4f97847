package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Kind is the value type an environment variable must parse as.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDuration:
		return "duration"
	default:
		return "string"
	}
}

// EnvVar declares one recognised environment variable.
type EnvVar struct {
	Key     string
	Kind    Kind
	Allowed []string
	Default interface{}
}

// EnvSchema is the ordered list of recognised environment variables.
type EnvSchema []EnvVar

// Schema lists every environment variable read at startup.
var Schema = EnvSchema{
	{Key: "NODE_ENV", Kind: KindString, Allowed: []string{EnvDevelopment, EnvProduction, EnvTest, EnvProvision}, Default: EnvDevelopment},
	{Key: "APP_NAME", Kind: KindString, Default: "exercise-api"},

	{Key: "SERVER_HOST", Kind: KindString, Default: "0.0.0.0"},
	{Key: "SERVER_PORT", Kind: KindNumber, Default: 3000},

	{Key: "DATABASE_HOST", Kind: KindString, Default: "localhost"},
	{Key: "DATABASE_PORT", Kind: KindNumber, Default: 5432},
	{Key: "DATABASE_NAME", Kind: KindString, Default: "exercise"},
	{Key: "DATABASE_USER", Kind: KindString, Default: "postgres"},
	{Key: "DATABASE_PASSWORD", Kind: KindString, Default: "postgres"},
	{Key: "DATABASE_SSL_MODE", Kind: KindString, Allowed: []string{"disable", "require", "verify-ca", "verify-full"}, Default: "disable"},
	{Key: "DATABASE_MAX_OPEN_CONNS", Kind: KindNumber, Default: 10},
	{Key: "DATABASE_MAX_IDLE_CONNS", Kind: KindNumber, Default: 5},
	{Key: "DATABASE_RETRY_ATTEMPTS", Kind: KindNumber, Default: 3},
	{Key: "DATABASE_RETRY_DELAY", Kind: KindDuration, Default: "3s"},

	{Key: "LOGGER_LEVEL", Kind: KindString, Allowed: []string{LevelLog, LevelError, LevelWarn, LevelDebug, LevelVerbose}, Default: LevelLog},
	{Key: "LOGGER_FORMAT", Kind: KindString, Allowed: []string{"json", "console"}, Default: "json"},

	{Key: "REDIS_ENABLED", Kind: KindBool, Default: false},
	{Key: "REDIS_HOST", Kind: KindString, Default: "localhost"},
	{Key: "REDIS_PORT", Kind: KindNumber, Default: 6379},
	{Key: "REDIS_PASSWORD", Kind: KindString, Default: ""},
	{Key: "REDIS_DB", Kind: KindNumber, Default: 0},
	{Key: "CACHE_TTL", Kind: KindDuration, Default: "5m"},

	{Key: "ALLOWED_ORIGINS", Kind: KindString, Default: ""},
}

// ValidationError reports an environment variable whose value breaks the schema.
type ValidationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s=%q %s", e.Key, e.Value, e.Reason)
}

// SetDefaults registers every schema default on v so absent keys resolve to them.
func (s EnvSchema) SetDefaults(v *viper.Viper) {
	for _, ev := range s {
		v.SetDefault(ev.Key, ev.Default)
	}
}

// Values holds the parsed value of every schema key. Numbers, booleans and
// durations are stored already converted, so the loader never parses twice.
type Values map[string]interface{}

func (vals Values) String(key string) string {
	s, _ := vals[key].(string)
	return s
}

func (vals Values) Int(key string) int {
	n, _ := vals[key].(int)
	return n
}

func (vals Values) Bool(key string) bool {
	b, _ := vals[key].(bool)
	return b
}

func (vals Values) Duration(key string) time.Duration {
	d, _ := vals[key].(time.Duration)
	return d
}

// Parse checks the resolved value of every key against its kind and allowed set
// and returns the converted values. It is the only place raw environment
// strings are coerced; numbers are read as base 10. All violations are
// returned joined, each one a *ValidationError.
func (s EnvSchema) Parse(v *viper.Viper) (Values, error) {
	vals := make(Values, len(s))
	var errs []error
	for _, ev := range s {
		raw := strings.TrimSpace(v.GetString(ev.Key))
		parsed, err := ev.parse(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals[ev.Key] = parsed
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return vals, nil
}

func (ev EnvVar) parse(raw string) (interface{}, error) {
	var parsed interface{} = raw
	switch ev.Kind {
	case KindNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ValidationError{Key: ev.Key, Value: raw, Reason: "must be a number"}
		}
		parsed = n
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &ValidationError{Key: ev.Key, Value: raw, Reason: "must be a boolean"}
		}
		parsed = b
	case KindDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &ValidationError{Key: ev.Key, Value: raw, Reason: "must be a duration"}
		}
		parsed = d
	}
	if len(ev.Allowed) > 0 && !slices.Contains(ev.Allowed, raw) {
		return nil, &ValidationError{Key: ev.Key, Value: raw, Reason: "must be one of " + strings.Join(ev.Allowed, ", ")}
	}
	return parsed, nil
}
