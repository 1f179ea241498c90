// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrBingoNotInitialized = errors.New("ErrBingoNotInitialized")
	ErrNotOperator         = errors.New("ErrNotOperator")
	ErrInvalidStartTime    = errors.New("ErrInvalidStartTime")
	ErrInvalidFeeAmount    = errors.New("ErrInvalidFeeAmount")
	ErrGameNameTaken       = errors.New("ErrGameNameTaken")
	ErrGameNotFound        = errors.New("ErrGameNotFound")
	ErrGameEnded           = errors.New("ErrGameEnded")
	ErrGameAlreadyStarted  = errors.New("ErrGameAlreadyStarted")
	ErrGameNotStartedYet   = errors.New("ErrGameNotStartedYet")
	ErrInvalidCardShape    = errors.New("ErrInvalidCardShape")
	ErrInvalidCardRange    = errors.New("ErrInvalidCardRange")
	ErrAlreadyJoined       = errors.New("ErrAlreadyJoined")
	ErrInsufficientFunds   = errors.New("ErrInsufficientFunds")
	ErrInvalidNumber       = errors.New("ErrInvalidNumber")
	ErrDuplicateNumber     = errors.New("ErrDuplicateNumber")
	ErrNotJoined           = errors.New("ErrNotJoined")
	ErrNoWin               = errors.New("ErrNoWin")
)

var (
	ErrNoBalance        = errors.New("ErrNoBalance")
	ErrAmount           = errors.New("ErrAmount")
	ErrSendSameToRecv   = errors.New("ErrSendSameToRecv")
	ErrAccountNotExist  = errors.New("ErrAccountNotExist")
	ErrInvalidParam     = errors.New("ErrInvalidParam")
	ErrNotFound         = errors.New("ErrNotFound")
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport  = errors.New("ErrQueryNotSupport")
)
