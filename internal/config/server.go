package config

import "strconv"

type ServerConfig struct {
	Port        int
	ServiceName string
}

func NewServerConfig() *ServerConfig {
	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8082"))
	if err != nil {
		port = 8082
	}
	return &ServerConfig{
		Port:        port,
		ServiceName: "classSchedule",
	}
}
