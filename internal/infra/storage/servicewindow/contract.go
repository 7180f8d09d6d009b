package servicewindow

import "github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
