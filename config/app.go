package config

type App struct {
	Port           string  `envconfig:"APP_PORT" default:"8080"`
	JWTSecret      string  `envconfig:"JWT_SECRET" default:"local_dev_secret"`
	LoanPeriodDays int     `envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	LateFeePerDay  float64 `envconfig:"LATE_FEE_PER_DAY" default:"0.50"`
	Env            string  `envconfig:"APP_ENV" default:"dev"`
}
