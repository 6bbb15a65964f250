package game

// Play removes the front piece of the queue and refills the queue.
//
// Fails with EmptySource if the queue is empty.
func (g *Game) Play() (Outcome, error) {
	if g.queue.IsEmpty() {
		return g.reject(NewEmptySourceError(ActionPlay, ContainerQueue))
	}

	played, _ := g.queue.Dequeue()
	out := Outcome{
		Action:    ActionPlay,
		Piece:     &played,
		Generated: g.refill(),
	}
	g.logger.Debug("piece played", "piece", played.String())
	return out, nil
}

// Reserve moves the front piece of the queue onto the reserve stack and
// refills the queue.
//
// Fails with EmptySource if the queue is empty, then FullDestination if the
// stack is full.
func (g *Game) Reserve() (Outcome, error) {
	if g.queue.IsEmpty() {
		return g.reject(NewEmptySourceError(ActionReserve, ContainerQueue))
	}
	if g.reserve.IsFull() {
		return g.reject(NewFullDestinationError(ActionReserve, g.reserve.Cap()))
	}

	moved, _ := g.queue.Dequeue()
	g.reserve.Push(moved)
	out := Outcome{
		Action:    ActionReserve,
		Piece:     &moved,
		Generated: g.refill(),
	}
	g.logger.Debug("piece reserved", "piece", moved.String())
	return out, nil
}

// UseReserved pops the top of the reserve stack. The queue is not touched and
// no piece is generated.
//
// Fails with EmptySource if the stack is empty.
func (g *Game) UseReserved() (Outcome, error) {
	if g.reserve.IsEmpty() {
		return g.reject(NewEmptySourceError(ActionUseReserved, ContainerReserve))
	}

	used, _ := g.reserve.Pop()
	g.logger.Debug("reserved piece used", "piece", used.String())
	return Outcome{Action: ActionUseReserved, Piece: &used}, nil
}

// SwapTop exchanges the queue front with the stack top in place.
//
// Fails with EmptySource if the queue is empty, then if the stack is empty.
func (g *Game) SwapTop() (Outcome, error) {
	if g.queue.IsEmpty() {
		return g.reject(NewEmptySourceError(ActionSwapTop, ContainerQueue))
	}
	if g.reserve.IsEmpty() {
		return g.reject(NewEmptySourceError(ActionSwapTop, ContainerReserve))
	}

	top := g.reserve.Len() - 1
	ex := g.exchange(0, top)
	g.logger.Debug("top swapped", "to_queue", ex.ToQueue.String(), "to_reserve", ex.ToReserve.String())
	return Outcome{Action: ActionSwapTop, Exchanges: []Exchange{ex}}, nil
}

// SwapBlock exchanges every reserve slot i (0 = bottom) with the queue piece
// at position i from the front.
//
// Fails with DestinationNotFull unless the stack is at capacity, then with
// InsufficientSource unless the queue holds at least as many pieces as the
// stack capacity.
func (g *Game) SwapBlock() (Outcome, error) {
	m := g.reserve.Cap()
	if !g.reserve.IsFull() {
		return g.reject(NewDestinationNotFullError(g.reserve.Len(), m))
	}
	if g.queue.Len() < m {
		return g.reject(NewInsufficientSourceError(g.queue.Len(), m))
	}

	exchanges := make([]Exchange, 0, m)
	for i := 0; i < m; i++ {
		exchanges = append(exchanges, g.exchange(i, i))
	}
	g.logger.Debug("block swapped", "pairs", m)
	return Outcome{Action: ActionSwapBlock, Exchanges: exchanges}, nil
}

// exchange swaps queue position qi with reserve position ri.
// Callers must have validated both positions.
func (g *Game) exchange(qi, ri int) Exchange {
	fromQueue, _ := g.queue.At(qi)
	fromReserve, _ := g.reserve.At(ri)
	g.queue.Set(qi, fromReserve)
	g.reserve.Set(ri, fromQueue)
	return Exchange{
		QueuePos:   qi,
		ReservePos: ri,
		ToQueue:    fromReserve,
		ToReserve:  fromQueue,
	}
}

func (g *Game) reject(err *ActionError) (Outcome, error) {
	g.logger.Debug("action rejected", "action", err.Action, "code", err.Code)
	return Outcome{Action: err.Action}, err
}
