package pcp

// ReconstructSteps replays seq against inst and returns one Step per chosen
// pair with the running accumulations. Indices outside inst stop the replay;
// the steps built so far are returned.
//
// Complexity: O(len(seq) * L) where L is the final accumulated length.
func ReconstructSteps(seq []int, inst Instance) []Step {
	var (
		steps     = make([]Step, 0, len(seq))
		topAcc    string
		bottomAcc string
		p         Pair
	)
	for i, idx := range seq {
		if idx < 0 || idx >= len(inst) {
			break
		}
		p = inst[idx]
		topAcc += p.Top
		bottomAcc += p.Bottom
		steps = append(steps, Step{
			Step:              i + 1,
			PairIndex:         idx,
			Pair:              p.String(),
			TopAccumulated:    topAcc,
			BottomAccumulated: bottomAcc,
			Match:             topAcc == bottomAcc && topAcc != "",
		})
	}

	return steps
}
