package controllers

import (
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Store is the shared data access facade, set once at startup.
var Store *store.Store

func Init(s *store.Store) {
    Store = s
}
