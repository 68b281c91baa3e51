package structures

const (
	CommandSplit    = "split"
	CommandFirstIDs = "first-ids"
	CommandSummary  = "summary"
	CommandVerify   = "verify"
)

type InputConfig struct {
	Path         string `yaml:"path" validate:"required"`
	Conversation int    `yaml:"conversation" validate:"min:0"`
}

type OutputConfig struct {
	Dir         string `yaml:"dir" validate:"required"`
	Compression string `yaml:"compression" validate:"required|in:none,zstd,gzip"`
	Indent      string `yaml:"indent"`
	FileMode    uint32 `yaml:"fileMode" validate:"required|uint"`
}

type GroupingConfig struct {
	Timezone string `yaml:"timezone" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode"`
	Dir   string `yaml:"dir"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName  string
	Debug    bool
	Path     string
	Command  string         `validate:"required|in:split,first-ids,summary,verify"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Grouping GroupingConfig `yaml:"grouping"`
	Logger   LoggerConfig   `yaml:"logger"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}
