package block

import (
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
