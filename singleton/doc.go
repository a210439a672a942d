/*
Package singleton 提供了一个泛型、并发安全的惰性单例容器。

# 概述

singleton 包实现了基于双重检查锁定的惰性单例，支持：
  - 惰性初始化：单例值仅在首次访问时才会被创建
  - 至多一次构造：无论多少 goroutine 同时访问，创建函数最多成功执行一次
  - 并发安全：构造完成后的读取无需加锁
  - 多参数适配：支持零、一、二、三个参数的创建函数

# 核心概念

## Holder（容器）

Holder 是核心类型，持有一个创建函数和一个原子指针单元：

	type Creator[A any, T any] func(arg A) (T, error)

主要功能：
  - Get/MustGet: 获取单例值（首次调用时触发构造）
  - Load: 读取已构造的值，不触发构造
  - Initialized: 判断是否已构造

## 参数适配器

适配器只负责把多个参数打包成复合参数（Args2、Args3），再委托给核心 Holder，
自身不持有额外状态，也不加锁：
  - Value: 无参数创建函数
  - Pair: 双参数创建函数
  - Triple: 三参数创建函数

# 使用示例

## 基础用法

	var db = singleton.New(func(dsn string) (*sql.DB, error) {
	    return sql.Open("mysql", dsn)
	}, singleton.WithName("db"))

	conn, err := db.Get("user:pass@tcp(host:3306)/db")
	if err != nil {
	    log.Fatal(err)
	}

## 多参数

	sum := singleton.NewPair(func(x, y int) (int, error) {
	    return x + y, nil
	})
	v := sum.MustGet(2, 3) // 5
	v = sum.MustGet(7, 7)  // 仍然是 5，后续参数被忽略

## 进程级单例

不建议直接暴露可变的全局变量，推荐由需要单例的包持有 Holder，
并通过类型化的访问函数对外提供：

	var clientHolder = singleton.NewValue(newClient)

	func Client() (*Client, error) {
	    return clientHolder.Get()
	}

# 参数语义

只有真正执行构造的那次调用所传入的参数会被使用。
构造完成后到达的调用、以及在竞争中未获得构造权的调用，其参数都会被忽略。

# 错误处理

包中定义了以下错误类型：

  - ErrNoCreator: Holder 没有创建函数
  - ErrCreateFailed: 创建函数返回错误

可以使用 errors.Is 进行错误类型判断。

构造失败是可重试的：创建函数返回错误或 panic 时，Holder 保持未初始化状态，
创建函数也会被保留。下一个获得锁的调用（包括构造期间正在等待锁的调用）
会使用自己的参数再次尝试构造。等待者不会永久阻塞，也不会在没有错误的情况下得到零值。

# 并发安全

  - 快速路径：通过原子指针读取单例值，不加锁
  - 慢速路径：每个 Holder 拥有独立的互斥锁，不同 Holder 之间互不阻塞
  - 构造成功后释放创建函数，闭包引用的资源可以被回收
  - 单例值构造后本包不会再修改它

# 日志

通过 WithLogger 传入 logr.Logger。只有构造过程会记录日志，已构造后的读取不会产生日志。
*/
package singleton
