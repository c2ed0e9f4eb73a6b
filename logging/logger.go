package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

// Init configura el logger compartido por las herramientas.
// En modo debug escribe solo a consola; en modo normal escribe a consola y a logs/<name>.log.
func Init(name string, debug bool) error {
	log = logrus.New()

	if debug {
		log.SetOutput(os.Stdout)
		log.SetLevel(logrus.DebugLevel)
	} else {
		// Crear directorio logs/ si no existe
		if err := os.MkdirAll("logs", 0755); err != nil {
			return err
		}
		logFile, err := os.OpenFile(filepath.Join("logs", name+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
		log.SetLevel(logrus.InfoLevel)
	}

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return nil
}

// Get devuelve el logger; si Init no se llamó (tests), usa consola a nivel Info.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stdout)
	}
	return log
}
