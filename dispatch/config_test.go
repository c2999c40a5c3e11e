package dispatch

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("endpoint", "http://localhost:26657")

	c, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:26657", c.Endpoint)
	assert.Equal(t, DefaultMethod, c.Method)
	assert.EqualValues(t, 3, c.MaxAttempts)
	assert.Equal(t, time.Second, c.BaseBackoff)
	assert.Equal(t, 10*time.Second, c.MaxBackoff)
}

func TestLoadConfig_File(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
endpoint: http://node:26657
method: abstractaccount_dispatch
max_attempts: 5
base_backoff: 250ms
max_backoff: 2s
`)))

	c, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Endpoint:    "http://node:26657",
		Method:      "abstractaccount_dispatch",
		MaxAttempts: 5,
		BaseBackoff: 250 * time.Millisecond,
		MaxBackoff:  2 * time.Second,
	}, c)
}

func TestLoadConfig_Env(t *testing.T) {
	os.Setenv("ABSACC_RPC_ENDPOINT", "http://env:26657")
	os.Setenv("ABSACC_RPC_MAX_ATTEMPTS", "7")
	defer os.Unsetenv("ABSACC_RPC_ENDPOINT")
	defer os.Unsetenv("ABSACC_RPC_MAX_ATTEMPTS")

	c, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://env:26657", c.Endpoint)
	assert.EqualValues(t, 7, c.MaxAttempts)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(viper.New())
	assert.Error(t, err)

	for _, c := range []Config{
		{},
		{Endpoint: "http://node", MaxAttempts: 1},
		{Endpoint: "http://node", Method: DefaultMethod},
		{Endpoint: "http://node", Method: DefaultMethod, MaxAttempts: 1, BaseBackoff: -1},
		{Endpoint: "http://node", Method: DefaultMethod, MaxAttempts: 1, BaseBackoff: time.Second, MaxBackoff: time.Millisecond},
	} {
		assert.Error(t, c.Validate())
	}
}
