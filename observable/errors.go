package observable

import "github.com/katalvlaran/mpscircuit/simerr"

func errMissingIndex(op string) error {
	return simerr.InvalidArgument(op, "this observable requires an i1 index, none was supplied at registration or record time")
}
