// Package environ wraps access to a mutable process environment behind a
// capability interface so the assembling and printing logic can run
// against an in-memory environment in tests.
package environ

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Env is the capability surface for a process environment.
type Env interface {
	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// Unsetenv unsets a single environment variable. Unsetting a missing
	// variable is a no-op.
	Unsetenv(key string) error

	// Getenv retrieves the value of the environment variable named by the
	// key. It returns the value, which will be empty if the variable is
	// not present.
	Getenv(key string) string

	// LookupEnv retrieves the value of the environment variable named by
	// the key and reports whether it is present.
	LookupEnv(key string) (string, bool)

	// Environ returns a copy of strings representing the environment, in
	// the form "key=value". The order of entries is unspecified; callers
	// that need an order must sort.
	Environ() []string

	// Clearenv deletes all environment variables.
	Clearenv()
}

// NewMapEnv creates a new empty environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromList creates a new environment holding a copy of the
// variables in environ, given in "key=value" form. An entry without "=" is
// treated as a variable with an empty value.
func NewMapEnvFromList(environ []string) *MapEnv {
	out := &MapEnv{}

	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		// Ignore error, it is never set for MapEnv.
		_ = out.Setenv(key, value)
	}

	return out
}

// MapEnv implements an in-memory Env.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

// Setenv implements Env.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// Unsetenv implements Env.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// Getenv implements Env.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Environ implements Env.Environ. MapEnv sorts its entries; the Env
// contract itself promises no order.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}

// Clearenv implements Env.Clearenv.
func (m *MapEnv) Clearenv() {
	m.rw.Lock()
	defer m.rw.Unlock()
	m.env = make(map[string]string)
}
