package storage

import (
	"fmt"

	log "github.com/nan01ab/neo/common/logger"
	"github.com/nan01ab/neo/config"
	"github.com/syndtr/goleveldb/leveldb"
)

// DB wraps a leveldb handle. Store does not use it; Store holds its own
// *leveldb.DB (see NewStore).
type DB struct {
	db *leveldb.DB
}

// InitDB opens (creating if absent) the node's leveldb instance, named
// after the configured listen port so multiple local instances don't
// collide on disk.
func InitDB(cfg *config.Config) (*leveldb.DB, error) {
	dbName := fmt.Sprintf("leveldb_%d.db", cfg.Common.Port)
	dbPath := fmt.Sprintf("%s%s", cfg.DB.Path, dbName)

	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		log.Error("Failed to open db: ", err)
		return nil, err
	}

	log.Info("Successfully opened db: ", dbPath)
	return db, nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
