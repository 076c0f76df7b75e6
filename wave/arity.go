package wave

func Computed1[T0 any, R comparable](w *World, fn func(T0) (R, error), s0 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		if !ok0 {
			return zero, ErrSkip
		}
		return fn(a0)
	}, s0)
}

func Computed2[T0, T1 any, R comparable](w *World, fn func(T0, T1) (R, error), s0 Handle, s1 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		if !ok0 || !ok1 {
			return zero, ErrSkip
		}
		return fn(a0, a1)
	}, s0, s1)
}

func Computed3[T0, T1, T2 any, R comparable](w *World, fn func(T0, T1, T2) (R, error), s0 Handle, s1 Handle, s2 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		if !ok0 || !ok1 || !ok2 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2)
	}, s0, s1, s2)
}

func Computed4[T0, T1, T2, T3 any, R comparable](w *World, fn func(T0, T1, T2, T3) (R, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2, a3)
	}, s0, s1, s2, s3)
}

func Computed5[T0, T1, T2, T3, T4 any, R comparable](w *World, fn func(T0, T1, T2, T3, T4) (R, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4)
	}, s0, s1, s2, s3, s4)
}

func Computed6[T0, T1, T2, T3, T4, T5 any, R comparable](w *World, fn func(T0, T1, T2, T3, T4, T5) (R, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5)
	}, s0, s1, s2, s3, s4, s5)
}

func Computed7[T0, T1, T2, T3, T4, T5, T6 any, R comparable](w *World, fn func(T0, T1, T2, T3, T4, T5, T6) (R, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6)
	}, s0, s1, s2, s3, s4, s5, s6)
}

func Computed8[T0, T1, T2, T3, T4, T5, T6, T7 any, R comparable](w *World, fn func(T0, T1, T2, T3, T4, T5, T6, T7) (R, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle, s7 Handle) Handle {
	return ComputedFn(w, func(args Tuple) (R, error) {
		var zero R
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		a7, ok7 := Field[T7](args, 7)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
			return zero, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6, a7)
	}, s0, s1, s2, s3, s4, s5, s6, s7)
}

func Effect1[T0 any](w *World, fn func(T0, *World) error, s0 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		if !ok0 {
			return ErrSkip
		}
		return fn(a0, world)
	}, []Handle{s0}, triggers)
}

func Effect2[T0, T1 any](w *World, fn func(T0, T1, *World) error, s0 Handle, s1 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		if !ok0 || !ok1 {
			return ErrSkip
		}
		return fn(a0, a1, world)
	}, []Handle{s0, s1}, triggers)
}

func Effect3[T0, T1, T2 any](w *World, fn func(T0, T1, T2, *World) error, s0 Handle, s1 Handle, s2 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		if !ok0 || !ok1 || !ok2 {
			return ErrSkip
		}
		return fn(a0, a1, a2, world)
	}, []Handle{s0, s1, s2}, triggers)
}

func Effect4[T0, T1, T2, T3 any](w *World, fn func(T0, T1, T2, T3, *World) error, s0 Handle, s1 Handle, s2 Handle, s3 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			return ErrSkip
		}
		return fn(a0, a1, a2, a3, world)
	}, []Handle{s0, s1, s2, s3}, triggers)
}

func Effect5[T0, T1, T2, T3, T4 any](w *World, fn func(T0, T1, T2, T3, T4, *World) error, s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 {
			return ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, world)
	}, []Handle{s0, s1, s2, s3, s4}, triggers)
}

func Effect6[T0, T1, T2, T3, T4, T5 any](w *World, fn func(T0, T1, T2, T3, T4, T5, *World) error, s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, world)
	}, []Handle{s0, s1, s2, s3, s4, s5}, triggers)
}

func Effect7[T0, T1, T2, T3, T4, T5, T6 any](w *World, fn func(T0, T1, T2, T3, T4, T5, T6, *World) error, s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6, world)
	}, []Handle{s0, s1, s2, s3, s4, s5, s6}, triggers)
}

func Effect8[T0, T1, T2, T3, T4, T5, T6, T7 any](w *World, fn func(T0, T1, T2, T3, T4, T5, T6, T7, *World) error, s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle, s7 Handle, triggers ...Handle) Handle {
	return EffectFn(w, func(args Tuple, world *World) error {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		a7, ok7 := Field[T7](args, 7)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
			return ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6, a7, world)
	}, []Handle{s0, s1, s2, s3, s4, s5, s6, s7}, triggers)
}

func Task1[T0 any](w *World, fn func(T0) (Batch, error), s0 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		if !ok0 {
			return Batch{}, ErrSkip
		}
		return fn(a0)
	}, []Handle{s0}, triggers)
}

func Task2[T0, T1 any](w *World, fn func(T0, T1) (Batch, error), s0 Handle, s1 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		if !ok0 || !ok1 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1)
	}, []Handle{s0, s1}, triggers)
}

func Task3[T0, T1, T2 any](w *World, fn func(T0, T1, T2) (Batch, error), s0 Handle, s1 Handle, s2 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		if !ok0 || !ok1 || !ok2 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2)
	}, []Handle{s0, s1, s2}, triggers)
}

func Task4[T0, T1, T2, T3 any](w *World, fn func(T0, T1, T2, T3) (Batch, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2, a3)
	}, []Handle{s0, s1, s2, s3}, triggers)
}

func Task5[T0, T1, T2, T3, T4 any](w *World, fn func(T0, T1, T2, T3, T4) (Batch, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4)
	}, []Handle{s0, s1, s2, s3, s4}, triggers)
}

func Task6[T0, T1, T2, T3, T4, T5 any](w *World, fn func(T0, T1, T2, T3, T4, T5) (Batch, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5)
	}, []Handle{s0, s1, s2, s3, s4, s5}, triggers)
}

func Task7[T0, T1, T2, T3, T4, T5, T6 any](w *World, fn func(T0, T1, T2, T3, T4, T5, T6) (Batch, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6)
	}, []Handle{s0, s1, s2, s3, s4, s5, s6}, triggers)
}

func Task8[T0, T1, T2, T3, T4, T5, T6, T7 any](w *World, fn func(T0, T1, T2, T3, T4, T5, T6, T7) (Batch, error), s0 Handle, s1 Handle, s2 Handle, s3 Handle, s4 Handle, s5 Handle, s6 Handle, s7 Handle, triggers ...Handle) Handle {
	return TaskFn(w, func(args Tuple) (Batch, error) {
		a0, ok0 := Field[T0](args, 0)
		a1, ok1 := Field[T1](args, 1)
		a2, ok2 := Field[T2](args, 2)
		a3, ok3 := Field[T3](args, 3)
		a4, ok4 := Field[T4](args, 4)
		a5, ok5 := Field[T5](args, 5)
		a6, ok6 := Field[T6](args, 6)
		a7, ok7 := Field[T7](args, 7)
		if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
			return Batch{}, ErrSkip
		}
		return fn(a0, a1, a2, a3, a4, a5, a6, a7)
	}, []Handle{s0, s1, s2, s3, s4, s5, s6, s7}, triggers)
}
