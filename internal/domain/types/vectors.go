package types

// RawVector is one EIP-2333 test vector as published (hex seed, decimal keys).
type RawVector struct {
	Seed       string `json:"seed"`
	MasterSK   string `json:"master_SK"`
	ChildIndex string `json:"child_index"`
	ChildSK    string `json:"child_SK"`
}

// Vector is a parsed RawVector.
type Vector struct {
	Seed       []byte
	MasterSK   SecretKey
	ChildIndex Index
	ChildSK    SecretKey
}

// VectorResult records the outcome of checking one Vector.
type VectorResult struct {
	Vector       Vector
	GotMasterSK  SecretKey
	GotChildSK   SecretKey
	MasterPassed bool
	ChildPassed  bool
}

// Passed reports whether both master and child derivation matched.
func (r VectorResult) Passed() bool { return r.MasterPassed && r.ChildPassed }
