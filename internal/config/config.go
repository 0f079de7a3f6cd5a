package config

import (
	"strings"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/util"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SRSRAN_PROFILE_OUTPUT.
const EnvPrefix = "SRSRAN_PROFILE"

type Config struct {
	Output   string            `mapstructure:"output"` // empty or "-" for stdout
	Bindings string            `mapstructure:"bindings"`
	Repo     string            `mapstructure:"repo"`
	Params   map[string]string `mapstructure:"params"`
	Log      LogConfig         `mapstructure:"log"`
	Profile  ProfileConfig     `mapstructure:"profile"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

type ProfileConfig struct {
	NodeName            string `mapstructure:"node_name"`
	DiskImage           string `mapstructure:"disk_image"`
	RoleName            string `mapstructure:"role_name"`
	PlaybookDir         string `mapstructure:"playbook_dir"`
	PlaybookFile        string `mapstructure:"playbook_file"`
	OverrideKey         string `mapstructure:"override_key"`
	OverrideValue       string `mapstructure:"override_value"`
	RepositoryDir       string `mapstructure:"repository_dir"`
	BootstrapDir        string `mapstructure:"bootstrap_dir"`
	SetupLog            string `mapstructure:"setup_log"`
	AnsibleVenv         string `mapstructure:"ansible_venv"`
	AutomationScript    string `mapstructure:"automation_script"`
	CollectionsDir      string `mapstructure:"collections_dir"`
	CollectionNamespace string `mapstructure:"collection_namespace"`
	CollectionRepo      string `mapstructure:"collection_repo"`
	UserCommand         string `mapstructure:"user_command"`
}

// SetDefaults registers every known key on v so file, env and flag values
// all resolve through Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := profile.DefaultSettings()

	v.SetDefault("output", "")
	v.SetDefault("bindings", "")
	v.SetDefault("repo", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("profile.node_name", d.NodeName)
	v.SetDefault("profile.disk_image", d.DiskImage)
	v.SetDefault("profile.role_name", d.RoleName)
	v.SetDefault("profile.playbook_dir", d.PlaybookDir)
	v.SetDefault("profile.playbook_file", d.PlaybookFile)
	v.SetDefault("profile.override_key", d.OverrideKey)
	v.SetDefault("profile.override_value", d.OverrideValue)
	v.SetDefault("profile.repository_dir", d.RepositoryDir)
	v.SetDefault("profile.bootstrap_dir", d.BootstrapDir)
	v.SetDefault("profile.setup_log", d.SetupLog)
	v.SetDefault("profile.ansible_venv", d.AnsibleVenv)
	v.SetDefault("profile.automation_script", d.AutomationScript)
	v.SetDefault("profile.collections_dir", d.CollectionsDir)
	v.SetDefault("profile.collection_namespace", d.CollectionNamespace)
	v.SetDefault("profile.collection_repo", d.CollectionRepo)
	v.SetDefault("profile.user_command", d.UserCommand)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v. Callers register defaults with
// SetDefaults first.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Params == nil {
		cfg.Params = make(map[string]string)
	}
	return cfg, nil
}

// Settings returns the builder settings described by the profile section.
// The node name is coerced into a valid client_id.
func (c *Config) Settings() profile.Settings {
	p := c.Profile
	return profile.Settings{
		NodeName:            util.SanitizeID(p.NodeName),
		DiskImage:           p.DiskImage,
		RoleName:            p.RoleName,
		PlaybookDir:         p.PlaybookDir,
		PlaybookFile:        p.PlaybookFile,
		OverrideKey:         p.OverrideKey,
		OverrideValue:       p.OverrideValue,
		RepositoryDir:       p.RepositoryDir,
		BootstrapDir:        p.BootstrapDir,
		SetupLog:            p.SetupLog,
		AnsibleVenv:         p.AnsibleVenv,
		AutomationScript:    p.AutomationScript,
		CollectionsDir:      p.CollectionsDir,
		CollectionNamespace: p.CollectionNamespace,
		CollectionRepo:      p.CollectionRepo,
		UserCommand:         p.UserCommand,
	}
}
