package configure

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func checkErr(err error) {
	if err != nil {
		zap.S().Fatalw("config",
			"error", err,
		)
	}
}

func New() *Config {
	initLogging("info")

	config := viper.New()

	// Default config
	b, _ := json.Marshal(defaultConfig())
	defaults := bytes.NewReader(b)

	tmp := viper.New()
	tmp.SetConfigType("json")
	checkErr(tmp.ReadConfig(defaults))
	checkErr(config.MergeConfigMap(tmp.AllSettings()))

	pflag.String("config", "config.yaml", "Config file location")
	pflag.Bool("noheader", false, "Disable the startup header")

	pflag.Parse()
	checkErr(config.BindPFlags(pflag.CommandLine))

	// File
	config.SetConfigFile(config.GetString("config"))
	config.AddConfigPath(".")

	if err := config.ReadInConfig(); err == nil {
		checkErr(config.MergeInConfig())
	}

	bindEnvs(config, Config{})

	// Environment
	config.AutomaticEnv()
	config.SetEnvPrefix("BIO")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AllowEmptyEnv(true)

	c := &Config{}
	checkErr(config.Unmarshal(&c))

	initLogging(c.Level)

	return c
}

func defaultConfig() Config {
	c := Config{
		Level:      "info",
		ConfigFile: "config.yaml",
	}

	c.Http.Addr = "0.0.0.0"
	c.Http.Ports.REST = 3000

	c.Lanyard.APIBase = "https://api.lanyard.rest/v1"
	c.Lanyard.PollIntervalSeconds = 60

	c.Views.CooldownSeconds = 60
	c.Views.RefreshIntervalSeconds = 30
	c.Views.CookieName = "last_visit"
	c.Views.CookieRetentionDays = 30

	c.Limits.Buckets.API = [2]int64{60, 60}

	return c
}

func bindEnvs(config *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)

	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)

		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}

		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(config, v.Interface(), append(parts, tv)...)
		default:
			_ = config.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

type Config struct {
	Level      string `mapstructure:"level" json:"level"`
	ConfigFile string `mapstructure:"config" json:"config"`
	NoHeader   bool   `mapstructure:"noheader" json:"noheader"`
	WebsiteURL string `mapstructure:"website_url" json:"website_url"`

	K8S struct {
		NodeName string `mapstructure:"node_name" json:"node_name"`
		PodName  string `mapstructure:"pod_name" json:"pod_name"`
	} `mapstructure:"k8s" json:"k8s"`

	Health struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
	} `mapstructure:"health" json:"health"`

	PProf struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
	} `mapstructure:"pprof" json:"pprof"`

	Monitoring struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
		Labels  Labels `mapstructure:"labels" json:"labels"`
	} `mapstructure:"monitoring" json:"monitoring"`

	Http struct {
		Addr          string `mapstructure:"addr" json:"addr"`
		VersionSuffix string `mapstructure:"version_suffix" json:"version_suffix"`
		Ports         struct {
			REST int `mapstructure:"rest" json:"rest"`
		} `mapstructure:"ports" json:"ports"`

		Cookie struct {
			Domain    string   `mapstructure:"domain" json:"domain"`
			Secure    bool     `mapstructure:"secure" json:"secure"`
			Whitelist []string `mapstructure:"whitelist" json:"whitelist"`
		} `mapstructure:"cookie" json:"cookie"`
	} `mapstructure:"http" json:"http"`

	Portal struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Bind    string `mapstructure:"bind" json:"bind"`
		Root    string `mapstructure:"root" json:"root"`
	} `mapstructure:"portal" json:"portal"`

	Discord struct {
		// UserID is the tracked user. The one required value.
		UserID string `mapstructure:"user_id" json:"user_id"`
	} `mapstructure:"discord" json:"discord"`

	Lanyard struct {
		APIBase             string `mapstructure:"api_base" json:"api_base"`
		PollIntervalSeconds int    `mapstructure:"poll_interval_seconds" json:"poll_interval_seconds"`
	} `mapstructure:"lanyard" json:"lanyard"`

	Views struct {
		CooldownSeconds        int    `mapstructure:"cooldown_seconds" json:"cooldown_seconds"`
		RefreshIntervalSeconds int    `mapstructure:"refresh_interval_seconds" json:"refresh_interval_seconds"`
		CookieName             string `mapstructure:"cookie_name" json:"cookie_name"`
		CookieRetentionDays    int    `mapstructure:"cookie_retention_days" json:"cookie_retention_days"`
	} `mapstructure:"views" json:"views"`

	Limits struct {
		Buckets struct {
			// [requests, window seconds]
			API [2]int64 `mapstructure:"api" json:"api"`
		} `mapstructure:"buckets" json:"buckets"`
	} `mapstructure:"limits" json:"limits"`

	Credentials struct {
		JWTSecret string `mapstructure:"jwt_secret" json:"jwt_secret"`
	} `mapstructure:"credentials" json:"credentials"`
}

// Validate reports every missing or out-of-range value at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Discord.UserID == "" {
		result = multierror.Append(result, errMissing("discord.user_id"))
	}

	if c.Lanyard.APIBase == "" {
		result = multierror.Append(result, errMissing("lanyard.api_base"))
	}

	if c.Lanyard.PollIntervalSeconds <= 0 {
		result = multierror.Append(result, errRange("lanyard.poll_interval_seconds"))
	}

	if c.Views.CooldownSeconds <= 0 {
		result = multierror.Append(result, errRange("views.cooldown_seconds"))
	}

	if c.Views.CookieRetentionDays <= 0 {
		result = multierror.Append(result, errRange("views.cookie_retention_days"))
	}

	if c.Credentials.JWTSecret == "" {
		result = multierror.Append(result, errMissing("credentials.jwt_secret"))
	}

	return result.ErrorOrNil()
}

type configError string

func (e configError) Error() string { return string(e) }

func errMissing(key string) error { return configError("missing required config value: " + key) }
func errRange(key string) error   { return configError("config value must be positive: " + key) }

type Labels []struct {
	Key   string `mapstructure:"key" json:"key"`
	Value string `mapstructure:"value" json:"value"`
}

func (l Labels) ToPrometheus() prometheus.Labels {
	mp := prometheus.Labels{}

	for _, v := range l {
		mp[v.Key] = v.Value
	}

	return mp
}
