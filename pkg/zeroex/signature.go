package zeroex

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/hwpark/zrxmatch/pkg/crypto"
)

// SignatureType tags the last byte of a v2 Exchange signature and tells the
// contract how to validate the preceding bytes.
type SignatureType uint8

const (
	SignatureIllegal SignatureType = iota
	SignatureInvalid
	SignatureEIP712
	SignatureEthSign
	SignatureWallet
	SignatureValidator
	SignaturePreSigned
)

func (t SignatureType) String() string {
	switch t {
	case SignatureIllegal:
		return "Illegal"
	case SignatureInvalid:
		return "Invalid"
	case SignatureEIP712:
		return "EIP712"
	case SignatureEthSign:
		return "EthSign"
	case SignatureWallet:
		return "Wallet"
	case SignatureValidator:
		return "Validator"
	case SignaturePreSigned:
		return "PreSigned"
	default:
		return fmt.Sprintf("SignatureType(%d)", uint8(t))
	}
}

// ethSignedMessageHash applies the personal-message prefix the EthSign
// scheme expects: keccak256("\x19Ethereum Signed Message:\n32" || hash).
func ethSignedMessageHash(orderHash common.Hash) common.Hash {
	return gethcrypto.Keccak256Hash(
		[]byte("\x19Ethereum Signed Message:\n32"),
		orderHash.Bytes(),
	)
}

// SignHash signs a canonical order hash under the given scheme and returns
// the exchange wire layout {v}{r}{s}{signatureType} (66 bytes). Only the
// ECDSA schemes (EIP712, EthSign) are producible locally.
func SignHash(signer *crypto.Signer, orderHash common.Hash, sigType SignatureType) ([]byte, error) {
	var digest common.Hash
	switch sigType {
	case SignatureEIP712:
		digest = orderHash
	case SignatureEthSign:
		digest = ethSignedMessageHash(orderHash)
	default:
		return nil, fmt.Errorf("cannot sign with signature type %s", sigType)
	}

	rsv, err := signer.Sign(digest.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to sign order hash: %w", err)
	}

	// geth produces r||s||v with recovery id 0/1; the contract expects
	// v+27 first, the type tag last.
	sig := make([]byte, 66)
	sig[0] = rsv[64] + 27
	copy(sig[1:65], rsv[:64])
	sig[65] = byte(sigType)
	return sig, nil
}

// SignOrder hashes an order and signs it with the maker's key, returning a
// SignedOrder ready for submission.
func SignOrder(signer *crypto.Signer, order *Order, sigType SignatureType) (*SignedOrder, error) {
	hash, err := HashOrder(order)
	if err != nil {
		return nil, err
	}
	sig, err := SignHash(signer, hash, sigType)
	if err != nil {
		return nil, err
	}
	return &SignedOrder{Order: *order, Signature: sig}, nil
}

// VerifySignature checks a {v}{r}{s}{type} signature against an order hash
// and the claimed signer address.
func VerifySignature(signerAddr common.Address, orderHash common.Hash, signature []byte) (bool, error) {
	if len(signature) != 66 {
		return false, fmt.Errorf("invalid signature length: %d", len(signature))
	}

	var digest common.Hash
	switch SignatureType(signature[65]) {
	case SignatureEIP712:
		digest = orderHash
	case SignatureEthSign:
		digest = ethSignedMessageHash(orderHash)
	default:
		return false, fmt.Errorf("cannot verify signature type %s", SignatureType(signature[65]))
	}

	// back to geth's r||s||v layout
	rsv := make([]byte, 65)
	copy(rsv[:64], signature[1:65])
	rsv[64] = signature[0] - 27

	return crypto.VerifySignature(signerAddr, digest.Bytes(), rsv), nil
}
