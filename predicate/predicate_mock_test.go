// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package predicate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/luxfi/scpquorum/identity"
	"github.com/luxfi/scpquorum/message"
	"github.com/luxfi/scpquorum/message/messagemock"
)

func TestFunc_Test_UsesOnlyTopic(t *testing.T) {
	ctrl := gomock.NewController(t)

	view := messagemock.NewView(ctrl)
	view.EXPECT().Topic().Return("accepted")

	f := Func[identity.ResponderID, string]{
		TestFn: func(msg message.View[identity.ResponderID, string]) bool {
			return msg.Topic() == "accepted"
		},
	}

	next, ok := f.Test(view)
	require.True(t, ok)
	require.IsType(t, f, next)
	require.Equal(t, reflect.ValueOf(f.TestFn).Pointer(), reflect.ValueOf(next.(Func[identity.ResponderID, string]).TestFn).Pointer())
}
