package environ

import "os"

// System returns the Env backed by the real process environment.
func System() Env {
	return osEnv{}
}

type osEnv struct{}

var _ Env = osEnv{}

func (osEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (osEnv) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

func (osEnv) Getenv(key string) string {
	return os.Getenv(key)
}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnv) Environ() []string {
	return os.Environ()
}

func (osEnv) Clearenv() {
	os.Clearenv()
}
