package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "EBD Conectada")
	Conf.SetDefault("churchName", "Igreja Evangélica Congregacional da Liberdade")
	Conf.SetDefault("churchAddress", "Rua Martins Júnior, 841 - Liberdade")
	Conf.SetDefault("meetingTime", "Domingos às 09:30hs")

	// persistent store: a single shared namespace, one key per collection
	Conf.SetDefault("storageDir", "data")
	Conf.SetDefault("storageNamespace", "ebd_conectada")

	// fixed administrator credential; intentionally kept out of the users
	// collection and exempt from CRUD
	Conf.SetDefault("adminLogins", []string{"admin", "admin@iecl.com"})
	Conf.SetDefault("adminSecret", "Rebegio05@")
	Conf.SetDefault("adminName", "Administrador")
	Conf.SetDefault("adminEmail", "admin@iecl.com")

	// email
	Conf.SetDefault("defaultFromEmail", "noreply@localhost")
	Conf.SetDefault("contactNotifyEmail", "admin@iecl.com")
	Conf.SetDefault("sendgridApiKey", "")

	// error reporting
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
