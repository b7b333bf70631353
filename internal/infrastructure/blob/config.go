package blob

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type StoreConfig struct {
	Bucket        string `yaml:"bucket"`
	PublicBaseURL string `yaml:"public_base_url"`
	UploadTimeout int64  `yaml:"upload_timeout_in_ms"`
	QueryTimeout  int64  `yaml:"query_timeout_in_ms"`
}
