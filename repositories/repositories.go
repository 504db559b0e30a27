package repositories

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	LivenessRepository LivenessRepository
	ListRepository     ListRepository
	TodoRepository     TodoRepository
}

func NewRepositories(pool ConnectionPool) Repositories {
	return Repositories{
		ExecutorGetter:     NewExecutorGetter(pool),
		LivenessRepository: &LivenessRepositoryPostgresql{},
		ListRepository:     &ListRepositoryPostgresql{},
		TodoRepository:     &TodoRepositoryPostgresql{},
	}
}
