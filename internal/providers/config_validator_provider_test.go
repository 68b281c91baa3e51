package providers

import (
	"chatsplit/internal/structures"
	"github.com/stretchr/testify/assert"
	"testing"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Command: structures.CommandSplit,
		Input: structures.InputConfig{
			Path: "/tmp/conversations.json",
		},
		Output: structures.OutputConfig{
			Dir:         "/tmp/output_by_date",
			Compression: "none",
			Indent:      "    ",
			FileMode:    0644,
		},
		Grouping: structures.GroupingConfig{
			Timezone: "UTC",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyInput(t *testing.T) {
	c := validConfig()
	c.Input.Path = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_NegativeConversation(t *testing.T) {
	c := validConfig()
	c.Input.Conversation = -1
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownCommand(t *testing.T) {
	c := validConfig()
	c.Command = "serve"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_EmptyCommand(t *testing.T) {
	c := validConfig()
	c.Command = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownCompression(t *testing.T) {
	c := validConfig()
	c.Output.Compression = "brotli"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownTimezone(t *testing.T) {
	c := validConfig()
	c.Grouping.Timezone = "Mars/Olympus_Mons"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_IANATimezone(t *testing.T) {
	c := validConfig()
	c.Grouping.Timezone = "Europe/Athens"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_MetricsWithoutTextfile(t *testing.T) {
	c := validConfig()
	c.Metrics.Enabled = true
	assert.Error(t, NewCnfValidator(c).Validate())
}
