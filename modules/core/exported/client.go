package exported

// Status represents the status of a bridge instance
type Status string

const (
	// ModuleName is the name shared by every bridge module of this repository.
	ModuleName = "seqwasm"

	// Attestations is used to indicate that the bridge is gated by validator-set signatures.
	Attestations string = "10-attestations"

	// HeaderRange is used to indicate that the bridge is gated by succinct header-range proofs.
	HeaderRange string = "11-headerrange"

	// Active is a status type of a bridge. An active bridge accepts state transitions.
	Active Status = "Active"

	// Frozen is a status type of a bridge. A frozen bridge rejects every state transition
	// except the guardian's own administrative calls.
	Frozen Status = "Frozen"

	// Uninitialized is the status of a bridge whose initializer has not run yet.
	Uninitialized Status = "Uninitialized"
)

// TxContext carries the host transaction context an entry point is invoked with.
type TxContext struct {
	// Timestamp is the host block time in unix seconds.
	Timestamp int64
	// MsgSender is the raw address of the transaction signer.
	MsgSender []byte
}

// ProofVerifier verifies a succinct proof over publicValues for the program
// identified by programVKeyHash. A nil error means the proof is valid.
type ProofVerifier interface {
	VerifyProof(programVKeyHash, publicValues, proof, programVKey []byte) error
}

// LightClientModule is the entry-point surface shared by the bridge modules.
// Every mutating call returns true only when the whole transition was applied.
type LightClientModule interface {
	Initializer(ctx TxContext, input []byte) bool
	UpdateFreeze(ctx TxContext, input []byte) bool
	VerifyAttestation(ctx TxContext, input []byte) bool

	Status() Status
}
