package tradepnl

// openLot wraps a Buy trade awaiting a closing match, plus the quantity of
// it not yet consumed. Lots only live inside one matching pass.
type openLot struct {
	trade     Trade
	remaining Quantity
}

// lotQueue is a FIFO queue of open lots for one (symbol, option class) key.
// Insertion order is match order.
type lotQueue []openLot

func (q lotQueue) isEmpty() bool { return len(q) == 0 }

// oldest returns a pointer to the front lot so the matcher can shrink its
// remaining quantity in place on a partial close.
func (q lotQueue) oldest() *openLot { return &q[0] }

func (q lotQueue) push(lot openLot) lotQueue { return append(q, lot) }

func (q lotQueue) popOldest() lotQueue { return q[1:] }
