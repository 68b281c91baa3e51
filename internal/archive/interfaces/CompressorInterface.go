package interfaces

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	// Name is the config value selecting this codec.
	Name() string
	// Extension is appended to ".json" in output file names.
	Extension() string
	Close()
}
