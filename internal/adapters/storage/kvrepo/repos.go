package kvrepo

import (
	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"
	"vetcalc/internal/ports/kvstore"
)

func NewHistoryRepo(store kvstore.Store) history.Repository {
	return newJSONList[history.Record](store, HistoryKey)
}

func NewVaccineRepo(store kvstore.Store) vaccines.Repository {
	return newJSONList[vaccines.Record](store, VaccinesKey)
}
