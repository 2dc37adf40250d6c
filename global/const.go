package global

const (
	// MultiStateDBName is the default directory name of the state database
	MultiStateDBName = "tesseradb"
	// ConstantsFileName is the default name of the genesis protocol constants file
	ConstantsFileName = "tessera.constants.yaml"
)
