package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CacheRepository --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename cache_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name HistoryRepository --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename history_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/credential --output domain/credential --outpkg credentialmock --filename repository_mock.go
