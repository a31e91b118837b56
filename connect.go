package tristate

import "iter"

// ConnectAnd folds && over s from the left, starting at true.
// It stops reading at the first false element.
func (s Bools) ConnectAnd() bool {
	acc := true
	for _, b := range s {
		acc = b
		if !acc {
			break
		}
	}
	return acc
}

// ConnectOr folds || over s from the left, starting at false.
// It stops reading at the first true element.
func (s Bools) ConnectOr() bool {
	acc := false
	for _, b := range s {
		acc = b
		if acc {
			break
		}
	}
	return acc
}

// ConnectAnd folds And over s from the left, starting at True.
// It stops reading once the result is False.
func (s Values) ConnectAnd() Value {
	acc := True
	for _, v := range s {
		acc = And(acc, v)
		if acc < 0 {
			break
		}
	}
	return acc
}

// ConnectOr folds Or over s from the left, starting at False.
// It stops reading once the result is True.
func (s Values) ConnectOr() Value {
	acc := False
	for _, v := range s {
		acc = Or(acc, v)
		if acc > 0 {
			break
		}
	}
	return acc
}

// All returns an iterator over the elements of s.
func (s Values) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// ConnectAndSeq folds And over seq, starting at True.
// No element is pulled after the result becomes False.
func ConnectAndSeq(seq iter.Seq[Value]) Value {
	acc := True
	for v := range seq {
		acc = And(acc, v)
		if acc < 0 {
			break
		}
	}
	return acc
}

// ConnectOrSeq folds Or over seq, starting at False.
// No element is pulled after the result becomes True.
func ConnectOrSeq(seq iter.Seq[Value]) Value {
	acc := False
	for v := range seq {
		acc = Or(acc, v)
		if acc > 0 {
			break
		}
	}
	return acc
}
