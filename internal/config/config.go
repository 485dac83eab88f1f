package config

type Config struct {
	Telegram Telegram
	HTTP     HTTP
	Storage  Storage
	Report   Report
}

type Telegram struct {
	Timeout   int    `env:"TIMEOUT" envDefault:"60"`
	WebAppURL string `env:"WEBAPP_URL" envDefault:"http://localhost:8080"`
}

type HTTP struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type Storage struct {
	DataFile string `env:"DATA_FILE" envDefault:"finance_data.json"`
}

type Report struct {
	// cron spec for the daily summary, robfig/cron format
	DailySchedule string `env:"DAILY_REPORT_SCHEDULE" envDefault:"0 9 * * *"`
}
