package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so deployment files can say "30s" instead
// of nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		HashKey  string `json:"hash_key"`
		LogLevel string `json:"log_level"`
		TUI      bool   `json:"tui"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blobs struct {
			Backend   string `json:"backend"`
			Bucket    string `json:"bucket"`
			Prefix    string `json:"prefix"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			UploadURL string `json:"upload_url"`
			Dir       string `json:"dir"`
			MaxEdgePx int    `json:"max_edge_px"`
		} `json:"blobs,omitempty"`

		QuotaBytes int64 `json:"quota_bytes"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Plant struct {
		HTTPAddress     string   `json:"http_address"`
		RealtimeAddress string   `json:"realtime_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"plant,omitempty"`

	Netmon struct {
		Debounce      Duration `json:"debounce"`
		OfflineWindow Duration `json:"offline_window"`
		ProbeInterval Duration `json:"probe_interval"`
	} `json:"netmon,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		StatusInterval  Duration `json:"status_interval"`
		MaintenanceSpec string   `json:"maintenance_spec"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:  jsonCfg.App.HashKey,
			LogLevel: jsonCfg.App.LogLevel,
			TUI:      jsonCfg.App.TUI,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Blobs: Blobs{
				Backend:   jsonCfg.Storage.Blobs.Backend,
				Bucket:    jsonCfg.Storage.Blobs.Bucket,
				Prefix:    jsonCfg.Storage.Blobs.Prefix,
				Region:    jsonCfg.Storage.Blobs.Region,
				Endpoint:  jsonCfg.Storage.Blobs.Endpoint,
				UploadURL: jsonCfg.Storage.Blobs.UploadURL,
				Dir:       jsonCfg.Storage.Blobs.Dir,
				MaxEdgePx: jsonCfg.Storage.Blobs.MaxEdgePx,
			},
			QuotaBytes: jsonCfg.Storage.QuotaBytes,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Plant: Plant{
			HTTPAddress:     jsonCfg.Plant.HTTPAddress,
			RealtimeAddress: jsonCfg.Plant.RealtimeAddress,
			RequestTimeout:  time.Duration(jsonCfg.Plant.RequestTimeout),
		},
		Netmon: Netmon{
			Debounce:      time.Duration(jsonCfg.Netmon.Debounce),
			OfflineWindow: time.Duration(jsonCfg.Netmon.OfflineWindow),
			ProbeInterval: time.Duration(jsonCfg.Netmon.ProbeInterval),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			StatusInterval:  time.Duration(jsonCfg.Workers.StatusInterval),
			MaintenanceSpec: jsonCfg.Workers.MaintenanceSpec,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
