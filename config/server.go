package config

import "os"

type ServerConfig struct {
	Addr string
	// JwksURL enables bearer token validation when set.
	JwksURL string
}

func GetServerConfig() *ServerConfig {
	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return &ServerConfig{
		Addr:    addr,
		JwksURL: os.Getenv("JWKS_URL"),
	}
}
