package workers

import "sync"

var wg sync.WaitGroup
var quit = make(chan struct{})

func InitWorkers() {
	PersistencePostVotes()
	RefreshPostHotSpot()
	RemoveExpiredObjectView()
	RemoveTreeIndexFromRedis()
}

func Wait() {
	close(quit)
	wg.Wait()
}
