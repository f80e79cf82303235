package config

type App struct {
	Port           string `env:"APP_PORT" default:"8080"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	TasksFile      string `env:"TASKS_FILE" default:"tasks.json"`
	OpenLibraryURL string `env:"OPENLIBRARY_URL" default:"https://openlibrary.org"`
	Env            string `env:"APP_ENV" default:"dev"`
}
