package values

// SyncValues -- дефолты пайплайна, которые можно переопределить в yaml.
// Нули означают "взять встроенный дефолт".
type SyncValues struct {
	PageSize     int `yaml:"page-size"`
	BatchSize    int `yaml:"batch-size"`
	BatchPauseMs int `yaml:"batch-pause-ms"`
}

const (
	DefaultPageSize     = 100
	DefaultBatchSize    = 500
	DefaultBatchPauseMs = 200
)

func (v *SyncValues) ApplyDefaults() {
	if v.PageSize <= 0 {
		v.PageSize = DefaultPageSize
	}
	if v.BatchSize <= 0 {
		v.BatchSize = DefaultBatchSize
	}
	if v.BatchPauseMs <= 0 {
		v.BatchPauseMs = DefaultBatchPauseMs
	}
}
