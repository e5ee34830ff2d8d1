package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		MaxTimeRequestsPerSeconds int
		RateLimitBlockInMinutes   int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret string
	}
)
