// This source file is part of the EdgeDB open source project.
//
// Copyright EdgeDB Inc. and the EdgeDB authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gel

import (
	"context"
	"fmt"
)

// borrowReason records why a pool connection is currently pinned to a
// single caller, so a second caller gets a descriptive error instead of
// corrupting the in-flight command on that connection.
type borrowReason string

const (
	notBorrowed      borrowReason = ""
	borrowedForTx    borrowReason = "transaction"
	borrowedForSubTx borrowReason = "subtransaction"
)

func (r borrowReason) inUseError() error {
	switch r {
	case borrowedForTx:
		return &interfaceError{
			msg: "The connection is borrowed for a transaction. " +
				"Use the methods on the transaction object instead.",
		}
	case borrowedForSubTx:
		return &interfaceError{
			msg: "The transaction is borrowed for a subtransaction. " +
				"Use the methods on the subtransaction object instead.",
		}
	default:
		return &interfaceError{msg: fmt.Sprintf(
			"existing borrow reason is unexpected: %q", string(r))}
	}
}

type borrowableConn struct {
	conn   *protocolConnection
	reason borrowReason
}

func (c *borrowableConn) borrow(reason borrowReason) (*protocolConnection, error) {
	if c.reason != notBorrowed {
		return nil, c.reason.inUseError()
	}

	switch reason {
	case borrowedForTx, borrowedForSubTx:
		c.reason = reason
		return c.conn, nil
	default:
		return nil, &interfaceError{msg: fmt.Sprintf(
			"unexpected borrow reason: %q", string(reason))}
	}
}

func (c *borrowableConn) unborrow() error {
	if c.reason == notBorrowed {
		return &interfaceError{msg: "not currently borrowed, cannot unborrow"}
	}

	c.reason = notBorrowed
	return nil
}

func (c *borrowableConn) assertUnborrowed() error {
	if c.reason == notBorrowed {
		return nil
	}

	return c.reason.inUseError()
}

func (c *borrowableConn) capabilities1pX() uint64 {
	return userCapabilities
}

func (c *borrowableConn) scriptFlow(ctx context.Context, q *query) error {
	if e := c.assertUnborrowed(); e != nil {
		return e
	}

	return c.conn.scriptFlow(ctx, q)
}

func (c *borrowableConn) granularFlow(ctx context.Context, q *query) error {
	if e := c.assertUnborrowed(); e != nil {
		return e
	}

	return c.conn.granularFlow(ctx, q)
}
