package archive

import (
	"context"
	"log"
	"os"
	"sync"
)

// Job, arşivlenecek spool dosyası. Pool dosyanın sahibidir:
// upload denemesinden sonra (başarılı ya da değil) dosyayı siler.
type Job struct {
	Key  string
	Path string
}

type Pool struct {
	jobChan  chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	uploader Uploader
}

func NewPool(workerCount int, uploader Uploader) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &Pool{
		jobChan:  make(chan Job, 100),
		ctx:      ctx,
		cancel:   cancel,
		uploader: uploader,
	}
	for i := 0; i < workerCount; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}
	return pool
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobChan {
		p.process(id, job)
	}
}

func (p *Pool) process(id int, job Job) {
	defer os.Remove(job.Path)

	file, err := os.Open(job.Path)
	if err != nil {
		log.Printf("Archive worker %d: spool dosyası açılamadı: %v", id, err)
		return
	}
	defer file.Close()

	if err := p.uploader.Put(p.ctx, job.Key, file); err != nil {
		log.Printf("Archive worker %d: %s arşivlenemedi: %v", id, job.Key, err)
		return
	}
	log.Printf("Archived original: %s", job.Key)
}

// Enqueue, kuyruk doluysa job'u bırakır ve false döner; upload akışını
// asla bloklamaz.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobChan <- job:
		return true
	default:
		log.Printf("Archive queue full, dropping %s", job.Key)
		os.Remove(job.Path)
		return false
	}
}

// Shutdown, kuyruğu kapatır ve bekleyen job'ların bitmesini bekler.
func (p *Pool) Shutdown() {
	close(p.jobChan)
	p.wg.Wait()
	p.cancel()
}
