package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/match --output domain/match --outpkg matchmock --filename provider_mock.go
