package types

// Config represents the configuration shared by the cplxcalc binaries
type Config struct {
	LogLevel   string `json:"log_level,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}
