package config

import (
	"time"

	"github.com/deduu/Youtube-audio-transcription/logger"
)

// Config is the root application configuration.
type Config struct {
	Logging  logger.Config  `yaml:"logging" mapstructure:"logging"`
	Whisper  WhisperConfig  `yaml:"whisper" mapstructure:"whisper"`
	Pyannote PyannoteConfig `yaml:"pyannote" mapstructure:"pyannote"`
	Ollama   OllamaConfig   `yaml:"ollama" mapstructure:"ollama"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
}

// WhisperConfig configures the transcription sidecar.
type WhisperConfig struct {
	BaseURL  string        `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Model    string        `yaml:"model" mapstructure:"model" validate:"required,oneof=tiny base small medium large"`
	Language string        `yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// PyannoteConfig configures the diarization sidecar.
type PyannoteConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OllamaConfig configures the transcript-analysis LLM.
type OllamaConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Model       string        `yaml:"model" mapstructure:"model" validate:"required"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// PipelineConfig configures job orchestration.
type PipelineConfig struct {
	// Workers bounds the number of sources processed in parallel.
	Workers int `yaml:"workers" mapstructure:"workers" validate:"min=1,max=64"`
	// OutputDir receives the rendered transcript files.
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir" validate:"required"`
	// WorkDir holds trimmed/downloaded intermediate audio. Empty means
	// the system temp directory.
	WorkDir string `yaml:"work_dir" mapstructure:"work_dir"`
	// KeepIntermediate disables cleanup of trimmed audio, for debugging.
	KeepIntermediate bool `yaml:"keep_intermediate" mapstructure:"keep_intermediate"`
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	Host         string `yaml:"host" mapstructure:"host"`
	Port         int    `yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()

	if c.Whisper.BaseURL == "" {
		c.Whisper.BaseURL = "http://localhost:8387"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Timeout == 0 {
		c.Whisper.Timeout = 120 * time.Second
	}

	if c.Pyannote.BaseURL == "" {
		c.Pyannote.BaseURL = "http://localhost:8388"
	}
	if c.Pyannote.Timeout == 0 {
		c.Pyannote.Timeout = 300 * time.Second
	}

	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "phi4:14b-fp16"
	}
	if c.Ollama.Temperature == 0 {
		c.Ollama.Temperature = 0.75
	}
	if c.Ollama.Timeout == 0 {
		c.Ollama.Timeout = 120 * time.Second
	}

	if c.Pipeline.Workers == 0 {
		c.Pipeline.Workers = 4
	}
	if c.Pipeline.OutputDir == "" {
		c.Pipeline.OutputDir = "outputs"
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 600
	}
}
