package glb

import (
	"github.com/daruolis/tessera/global"
	"github.com/daruolis/tessera/storage"
	"github.com/dgraph-io/badger/v4"
	"github.com/lunfardo314/unitrie/adaptors/badger_adaptor"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var (
	stateDB    *badger.DB
	stateStore storage.StateStore
)

func InitStateStoreDB() {
	dbName := global.MultiStateDBName
	Infof("State database: %s", dbName)
	FileMustExist(dbName)
	stateDB = badger_adaptor.MustCreateOrOpenBadgerDB(dbName)
	stateStore = badger_adaptor.New(stateDB)
	if viper.GetBool("trace") {
		stateStore = storage.NewTracingStore(stateStore, global.NewLogger("store", zapcore.DebugLevel))
	}
}

func StateStore() storage.StateStore {
	return stateStore
}

func CloseDatabases() {
	if stateDB != nil {
		_ = stateDB.Close()
	}
}

// MustLatestContext opens the state of the highest committed level
func MustLatestContext() (*storage.Context, storage.CommitRecord) {
	rec, err := storage.FetchLatestCommitRecord(stateStore)
	AssertNoError(err)
	ctx, err := storage.Prepare(stateStore, rec.Root)
	AssertNoError(err)
	return ctx, rec
}
