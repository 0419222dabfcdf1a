package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var c *config

const (
	RunAddress     = "RUN_ADDRESS"
	DatabaseURI    = "DATABASE_URI"
	BackendAddress = "BACKEND_ADDRESS"
	AMQPURL        = "AMQP_URL"
	SessionSecret  = "SESSION_SECRET"
)

const (
	defaultRunAddress     = "localhost:8080"
	defaultBackendAddress = "http://shabfood.ir:80/api"
	defaultSessionSecret  = "secret"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress     string
	DatabaseURI    string
	BackendAddress string
	AMQPURL        string
	SessionSecret  string
}

// NewConfig reads flags, falling back to the environment and then to an optional .env file.
func NewConfig() *config {
	_ = godotenv.Load()

	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=shabfood sslmode=disable",
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.BackendAddress, "b", setEnvOrDefault(BackendAddress, defaultBackendAddress), "shabfood backend API address")
	flag.StringVar(&c.AMQPURL, "q", setEnvOrDefault(AMQPURL, ""), "RabbitMQ url for status events, empty disables them")
	flag.StringVar(&c.SessionSecret, "s", setEnvOrDefault(SessionSecret, defaultSessionSecret), "session cookie signing secret")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
