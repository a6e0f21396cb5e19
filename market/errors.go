package market

import "errors"

var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrCollectionExists        = errors.New("collection already exists")
	ErrCollectionNotFound      = errors.New("collection not found")
	ErrInvalidCollectionStatus = errors.New("invalid collection status")
	ErrItemExists              = errors.New("item already exists")
	ErrItemNotFound            = errors.New("item not found")
	ErrNoItemsAvailable        = errors.New("no items available for minting")
	ErrNftIndexOutOfBound      = errors.New("nft index out of bound")
	ErrInsufficientFund        = errors.New("insufficient fund")
	ErrInvalidTreasuries       = errors.New("invalid allocation for treasuries")
	ErrInvalidRoyalties        = errors.New("invalid allocation for royalties")
	ErrMintByNameNotAllowed    = errors.New("mint by name not allowed")
	ErrPriceTypeNotFound       = errors.New("price type not found")
	ErrFailedToMakePayment     = errors.New("failed to make payment")
	ErrFailedToMintNft         = errors.New("failed to mint nft")
	ErrFailedToTransferNft     = errors.New("failed to transfer nft")
	ErrFailedToBurnNft         = errors.New("failed to burn nft")
	ErrFailedToSendNft         = errors.New("failed to send nft")
	ErrInvalidMessage          = errors.New("invalid message")
)
