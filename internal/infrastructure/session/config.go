package session

type Config struct {
	URI          string
	TTLInMinutes int64 `yaml:"ttl_in_minutes"`
}
