package near

import (
	"math/big"

	"github.com/near/borsh-go"
)

// Borsh-структуры транзакции NEAR. Порядок и типы полей фиксированы
// протоколом, менять их нельзя.

type publicKey struct {
	KeyType uint8
	Data    [32]byte
}

type signature struct {
	KeyType uint8
	Data    [64]byte
}

type functionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int // u128, в yoctoNEAR
}

// Порядковый номер варианта FunctionCall в enum Action.
const actionFunctionCall = 2

// action перечисляет все варианты действий протокола. Бот сериализует только
// FunctionCall, но остальные варианты обязаны присутствовать, чтобы порядковые
// номера enum совпадали с протокольными.
type action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  struct{}
	DeployContract struct {
		Code []byte
	}
	FunctionCall functionCall
	Transfer     struct {
		Deposit big.Int
	}
	Stake struct {
		Stake     big.Int
		PublicKey publicKey
	}
	AddKey        struct{}
	DeleteKey     struct{}
	DeleteAccount struct {
		BeneficiaryID string
	}
}

type transaction struct {
	SignerID   string
	PublicKey  publicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]byte
	Actions    []action
}

type signedTransaction struct {
	Transaction transaction
	Signature   signature
}
