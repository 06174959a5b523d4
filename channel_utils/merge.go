package channel_utils

import (
	"sync"
	"voice-translator-lambda/application/ports/outbound"
)

// MergeChannels fans the given channels into one, closed once every source is drained.
// The merged channel buffers one value per source, so single-value sources never wait on the reader.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T, len(channels))

	output := func(c <-chan T) {
		defer wg.Done()
		for val := range c {
			merged <- val
		}
	}

	wg.Add(len(channels))
	for i, c := range channels {
		ch := c
		err := workerPool.Submit(func() {
			output(ch)
		})
		if err != nil {
			// sources that were never picked up must not hold the closer forever
			wg.Add(-(len(channels) - i))
			return nil, err
		}
	}

	err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}
